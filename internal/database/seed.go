// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/severyanochka/storefront-backend/internal/models"
)

// Starter catalog. Real deployments replace this through imports; the
// seed only fills an empty table so a fresh install renders something.
var seedProducts = []models.Product{
	{ID: 1, Title: "Комбайн КЗС-1218 «ДЕСНА-ПОЛЕСЬЕ GS12»", Price: 44.5, OldPrice: 50.5, Discount: 12},
	{ID: 2, Title: "Семга слабосолёная, 300 г", Price: 18.9, OldPrice: 23.1, Discount: 18},
	{ID: 3, Title: "Яйцо перепелиное, 20 шт", Price: 9.9, OldPrice: 12.2, Discount: 10},
	{ID: 4, Title: "Сыр «Голландский» 45%", Price: 14.5, OldPrice: 17.9, Discount: 15},
	{ID: 5, Title: "Молоко фермерское 2.5%", Price: 3.5, OldPrice: 4.1, Discount: 5},
	{ID: 6, Title: "Чай зелёный с жасмином, 100 г", Price: 7.9, OldPrice: 9.3, Discount: 8},
	{ID: 7, Title: "Кофе молотый «Северный»", Price: 11.2, OldPrice: 14.4, Discount: 20},
	{ID: 8, Title: "Мёд таёжный, 500 г", Price: 16.8, OldPrice: 19.7, Discount: 12},
}

// Classifier rule table in declaration order. Order matters: the first
// rule whose keyword occurs in a lower-cased title wins.
var seedCategoryRules = []models.CategoryRule{
	{Position: 1, Name: "Хлебобулочные изделия", Keywords: pq.StringArray{"хлеб", "булк", "батон", "лаваш"}},
	{Position: 2, Name: "Молоко, сыр, яйцо", Keywords: pq.StringArray{"молоко", "сыр", "йогурт", "кефир", "яйц", "масло"}},
	{Position: 3, Name: "Фрукты и овощи", Keywords: pq.StringArray{"яблок", "банан", "огур", "помид", "картоф", "овощ", "фрукт", "зелень"}},
	{Position: 4, Name: "Замороженные продукты", Keywords: pq.StringArray{"заморож"}},
	{Position: 5, Name: "Напитки", Keywords: pq.StringArray{"напит", "сок", "вода", "квас"}},
	{Position: 6, Name: "Кондитерские изделия", Keywords: pq.StringArray{"шоколад", "конфет", "печенье", "зефир", "ваф"}},
	{Position: 7, Name: "Чай, кофе", Keywords: pq.StringArray{"чай", "кофе"}},
	{Position: 8, Name: "Бакалея", Keywords: pq.StringArray{"круп", "рис", "греч", "макарон", "мука"}},
	{Position: 9, Name: "Здоровое питание", Keywords: pq.StringArray{"фитнес", "протеин", "безглютен"}},
	{Position: 10, Name: "Мясо, птица, колбаса", Keywords: pq.StringArray{"мяс", "колбас", "кур", "фарш", "стейк"}},
	{Position: 11, Name: "Детское питание", Keywords: pq.StringArray{"детск", "пюре", "пелен"}},
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	if productCount == 0 {
		if err := db.Create(&seedProducts).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		log.Printf("Seeded %d products", len(seedProducts))
	}

	var ruleCount int64
	db.Model(&models.CategoryRule{}).Count(&ruleCount)
	if ruleCount == 0 {
		if err := db.Create(&seedCategoryRules).Error; err != nil {
			return fmt.Errorf("failed to seed category rules: %w", err)
		}
		log.Printf("Seeded %d category rules", len(seedCategoryRules))
	}

	log.Println("Initial data seeding completed")
	return nil
}

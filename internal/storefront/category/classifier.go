// internal/storefront/category/classifier.go

// Package category assigns category labels to products by matching
// keyword substrings against their titles. The rule table is
// configuration, not logic: it normally comes from the catalog service,
// with DefaultRules as the offline fallback.
package category

import (
	"strings"

	"github.com/severyanochka/storefront-backend/internal/storefront/catalog"
)

// AllProducts is the sentinel category for titles no rule matches. It
// doubles as the "no restriction" category name for browsing.
const AllProducts = "Все товары"

// Rule pairs a category label with the keyword substrings that select
// it. Rules are evaluated in declaration order and the first match wins,
// so the order of a rule slice is part of its meaning.
type Rule struct {
	Name     string
	Keywords []string
}

// DefaultRules is the built-in rule table, used when the service copy is
// unavailable. Order matters: "Молоко фермерское" must hit the dairy
// rule before anything else gets a chance.
var DefaultRules = []Rule{
	{Name: "Хлебобулочные изделия", Keywords: []string{"хлеб", "булк", "батон", "лаваш"}},
	{Name: "Молоко, сыр, яйцо", Keywords: []string{"молоко", "сыр", "йогурт", "кефир", "яйц", "масло"}},
	{Name: "Фрукты и овощи", Keywords: []string{"яблок", "банан", "огур", "помид", "картоф", "овощ", "фрукт", "зелень"}},
	{Name: "Замороженные продукты", Keywords: []string{"заморож"}},
	{Name: "Напитки", Keywords: []string{"напит", "сок", "вода", "квас"}},
	{Name: "Кондитерские изделия", Keywords: []string{"шоколад", "конфет", "печенье", "зефир", "ваф"}},
	{Name: "Чай, кофе", Keywords: []string{"чай", "кофе"}},
	{Name: "Бакалея", Keywords: []string{"круп", "рис", "греч", "макарон", "мука"}},
	{Name: "Здоровое питание", Keywords: []string{"фитнес", "протеин", "безглютен"}},
	{Name: "Мясо, птица, колбаса", Keywords: []string{"мяс", "колбас", "кур", "фарш", "стейк"}},
	{Name: "Детское питание", Keywords: []string{"детск", "пюре", "пелен"}},
}

// RulesFromService converts the wire rule table, preserving order.
func RulesFromService(wire []catalog.CategoryRule) []Rule {
	rules := make([]Rule, 0, len(wire))
	for _, r := range wire {
		rules = append(rules, Rule{Name: r.Name, Keywords: r.Keywords})
	}
	return rules
}

// Classifier is a pure matcher over a fixed rule slice.
type Classifier struct {
	rules []Rule
}

func NewClassifier(rules []Rule) *Classifier {
	if rules == nil {
		rules = DefaultRules
	}
	return &Classifier{rules: rules}
}

// Classify lower-cases the title and returns the label of the first rule
// with any keyword present as a substring, or AllProducts when nothing
// matches. Deterministic and side-effect-free.
func (c *Classifier) Classify(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Name
			}
		}
	}
	return AllProducts
}

// CategorizedProduct is a product plus its derived category label. The
// label is recomputed on every view build, never persisted.
type CategorizedProduct struct {
	catalog.Product
	Category string
}

// Categorize labels every product in order.
func (c *Classifier) Categorize(products []catalog.Product) []CategorizedProduct {
	out := make([]CategorizedProduct, 0, len(products))
	for _, p := range products {
		out = append(out, CategorizedProduct{Product: p, Category: c.Classify(p.Title)})
	}
	return out
}

// OfCategory restricts a categorized list to one category. AllProducts
// means no restriction.
func OfCategory(products []CategorizedProduct, name string) []CategorizedProduct {
	if name == AllProducts || name == "" {
		return products
	}
	var out []CategorizedProduct
	for _, p := range products {
		if p.Category == name {
			out = append(out, p)
		}
	}
	return out
}

// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthTokenMissing        = "auth.token_missing"
	KeyAuthTokenInvalid        = "auth.token_invalid"
	KeyAuthCredentialsRequired = "auth.credentials_required"
	KeyAuthPhonePasswordNeeded = "auth.phone_password_required"
	KeyAuthPasswordTooShort    = "auth.password_too_short"
	KeyAuthPasswordTooWeak     = "auth.password_too_weak"
	KeyAuthPhoneInvalid        = "auth.phone_invalid"
	KeyAuthPhoneTaken          = "auth.phone_taken"
	KeyAuthInvalidCredentials  = "auth.invalid_credentials"
	KeyAuthRegisterFailed      = "auth.register_failed"
	KeyAuthLoginFailed         = "auth.login_failed"
	KeyAuthProfileFailed       = "auth.profile_failed"

	// User Management
	KeyUserNotFound = "user.not_found"

	// Catalog
	KeyProductsLoadFailed   = "products.load_failed"
	KeyCategoriesLoadFailed = "categories.load_failed"

	// Rate limiting
	KeyRateLimited = "rate.limited"
)

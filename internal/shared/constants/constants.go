package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyTenantID  = "tenant_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableTenants               = "tenants"
	TableModules               = "modules"
	TableTenantModules         = "tenant_modules"
	TableNavItems              = "nav_items"
	TableRoles                 = "roles"
	TablePermissions           = "permissions"
	TableRolePermissions       = "role_permissions"
	TableUsers                 = "users"
	TableUserRoles             = "user_roles"
	TableUserModulePermissions = "user_module_permissions"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)

package services

// ServiceContainer holds all service facades needed by the handlers.
// This makes passing dependencies to route registration cleaner.
type ServiceContainer struct {
	Tenant   TenantSvcFacade
	Car      CarSvcFacade
	Theme    ThemeSvcFacade
	Currency CurrencySvcFacade
	Geo      GeoLocationSvcFacade
	License  LicenseSvcFacade
	Booking  BookingSvcFacade
	Auth     AuthSvcFacade
}

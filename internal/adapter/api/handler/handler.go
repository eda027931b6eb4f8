package handler

import (
	"mbogamarket/internal/usecase"
)

var (
	authHandler    *AuthHandler
	catalogHandler *CatalogHandler
	vendorHandler  *VendorHandler
	adminHandler   *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	vendorUseCase *usecase.VendorUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	vendorHandler = NewVendorHandler(vendorUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetVendorHandler() *VendorHandler {
	return vendorHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"mbogamarket/internal/usecase"
	"mbogamarket/pkg/errors"
	"mbogamarket/pkg/response"
)

type VendorHandler struct {
	vendorUseCase *usecase.VendorUseCase
}

func NewVendorHandler(vendorUseCase *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{
		vendorUseCase: vendorUseCase,
	}
}

type updateProfileRequest struct {
	Name           string `validate:"required"`
	StoreName      string `validate:"required"`
	Location       string
	Bio            string
	Phone          string
	Email          string `validate:"required,email"`
	ProfilePicture string `validate:"omitempty,url"`
}

type vegetableRequest struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Unit        string  `validate:"required"`
	Image       string  `validate:"omitempty,url"`
	Description string  `validate:"required"`
	InStock     bool
}

func (h *VendorHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	vendor, err := h.vendorUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vendor)
}

// UpdateProfile takes a multipart form; an attached "profilePicture" file is
// uploaded before the profile write and replaces the URL field.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	req := updateProfileRequest{
		Name:           c.FormValue("name"),
		StoreName:      c.FormValue("storeName"),
		Location:       c.FormValue("location"),
		Bio:            c.FormValue("bio"),
		Phone:          c.FormValue("phone"),
		Email:          c.FormValue("email"),
		ProfilePicture: c.FormValue("profilePicture"),
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	picture, closeFile, err := pendingUpload(c, "profilePicture")
	if err != nil {
		return response.Error(c, err)
	}
	if closeFile != nil {
		defer closeFile()
	}

	vendor, err := h.vendorUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Name:           req.Name,
		StoreName:      req.StoreName,
		Location:       req.Location,
		Bio:            req.Bio,
		Phone:          req.Phone,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	}, picture)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vendor)
}

func (h *VendorHandler) GetSubscription(c echo.Context) error {
	uid := c.Get("uid").(string)

	info, err := h.vendorUseCase.GetSubscription(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, info)
}

func (h *VendorHandler) ListMyVegetables(c echo.Context) error {
	uid := c.Get("uid").(string)

	vegetables, err := h.vendorUseCase.ListMyVegetables(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vegetables)
}

func (h *VendorHandler) CreateVegetable(c echo.Context) error {
	uid := c.Get("uid").(string)

	req, err := bindVegetableForm(c)
	if err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(req); err != nil {
		return response.Error(c, err)
	}

	image, closeFile, err := pendingUpload(c, "image")
	if err != nil {
		return response.Error(c, err)
	}
	if closeFile != nil {
		defer closeFile()
	}

	vegetable, err := h.vendorUseCase.CreateVegetable(c.Request().Context(), uid, vegetableInputFrom(req), image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, vegetable)
}

func (h *VendorHandler) UpdateVegetable(c echo.Context) error {
	uid := c.Get("uid").(string)
	id := c.Param("id")

	req, err := bindVegetableForm(c)
	if err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(req); err != nil {
		return response.Error(c, err)
	}

	image, closeFile, err := pendingUpload(c, "image")
	if err != nil {
		return response.Error(c, err)
	}
	if closeFile != nil {
		defer closeFile()
	}

	vegetable, err := h.vendorUseCase.UpdateVegetable(c.Request().Context(), uid, id, vegetableInputFrom(req), image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, vegetable)
}

func (h *VendorHandler) DeleteVegetable(c echo.Context) error {
	uid := c.Get("uid").(string)
	id := c.Param("id")

	if err := h.vendorUseCase.DeleteVegetable(c.Request().Context(), uid, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Vegetable deleted",
	})
}

func bindVegetableForm(c echo.Context) (*vegetableRequest, error) {
	req := &vegetableRequest{
		Name:        c.FormValue("name"),
		Unit:        c.FormValue("unit"),
		Image:       c.FormValue("image"),
		Description: c.FormValue("description"),
	}

	priceRaw := c.FormValue("price")
	if priceRaw == "" {
		return nil, errors.Validation("price is required", nil)
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return nil, errors.Validation("price must be a number", err)
	}
	req.Price = price

	if raw := c.FormValue("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Validation("inStock must be true or false", err)
		}
		req.InStock = inStock
	}

	return req, nil
}

func vegetableInputFrom(req *vegetableRequest) usecase.VegetableInput {
	return usecase.VegetableInput{
		Name:        req.Name,
		Price:       req.Price,
		Unit:        req.Unit,
		Image:       req.Image,
		Description: req.Description,
		InStock:     req.InStock,
	}
}

// pendingUpload returns the named file part if one was attached, leaving
// the upload itself to the use case.
func pendingUpload(c echo.Context, field string) (*usecase.ImageUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}

	src, err := fh.Open()
	if err != nil {
		return nil, nil, errors.BadRequest("Unable to read attached file", err)
	}

	return &usecase.ImageUpload{
		Reader:   src,
		Filename: fh.Filename,
	}, func() { src.Close() }, nil
}

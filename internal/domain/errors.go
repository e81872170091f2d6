package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden indicates an ownership or role mismatch.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation marks a missing or invalid user-supplied field;
	// wrap it with the field detail.
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyInCart is returned when adding a product that the shopper
	// already carted; quantity changes go through the explicit update.
	ErrAlreadyInCart = errors.New("product already in cart")
	// ErrOutOfStock is returned when a non-rental product has no stock
	// left, either at cart-add or at order placement.
	ErrOutOfStock = errors.New("out of stock")
	// ErrEmptyCart rejects order placement from a cart with no
	// resolvable lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingDetails rejects order placement without recipient
	// name, mobile and address.
	ErrMissingDetails = errors.New("missing shipping details")
	// ErrInvalidTransition rejects status changes on a terminal order.
	ErrInvalidTransition = errors.New("order already finalized")
)

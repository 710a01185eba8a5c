package controllers

import "errors"

var (
	ErrNoPermission        = errors.New("you do not have permission for this action")
	ErrRestaurantNotFound  = errors.New("restaurant not found or inactive")
	ErrRestaurantClosed    = errors.New("restaurant is not accepting orders")
	ErrReservationConflict = errors.New("table already has a confirmed reservation in that time window")
)

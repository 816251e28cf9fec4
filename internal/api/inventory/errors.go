package inventory

import "errors"

var errNegativeStock = errors.New("stock adjustment below zero")

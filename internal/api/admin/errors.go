package admin

import "errors"

var errAlreadyReviewed = errors.New("proof already reviewed")

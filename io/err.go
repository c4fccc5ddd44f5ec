package io

import (
	"errors"

	"github.com/gritvm/gritvm/translate"
)

var f = translate.From

var (
	// Sink errors
	ErrSinkFull = errors.New(f("sink full"))
)

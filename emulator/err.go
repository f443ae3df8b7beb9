package emulator

import (
	"errors"

	"github.com/ganeshsjsu/aurora-softcpu/translate"
)

var f = translate.From

var (
	ErrDumpRange = errors.New(f("dump request outside memory bounds"))
)

package request

import (
	"errors"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/voucher"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var ErrValidatorEngine = errors.New("gin binding validator is not go-playground/validator")

// RegisterValidators installs the voucher tags on gin's binding engine.
//
//	vouchercode: a code NewCode accepts after trimming and upper-casing
//	codeprefix:  a bulk prefix NormalizePrefix accepts
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return ErrValidatorEngine
	}
	if err := v.RegisterValidation("vouchercode", validVoucherCode); err != nil {
		return err
	}
	return v.RegisterValidation("codeprefix", validCodePrefix)
}

func validVoucherCode(fl validator.FieldLevel) bool {
	_, err := voucher.NewCode(fl.Field().String())
	return err == nil
}

func validCodePrefix(fl validator.FieldLevel) bool {
	_, err := voucher.NormalizePrefix(fl.Field().String())
	return err == nil
}

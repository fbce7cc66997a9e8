package api

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MissingFieldsMessage 缺少必填欄位時的錯誤訊息
const MissingFieldsMessage = "Missing required fields"

// ValidationMessage 將 validator 錯誤轉為回應訊息；缺必填欄位優先回報
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return MissingFieldsMessage
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return MissingFieldsMessage
		}
	}
	return fmt.Sprintf("Invalid value for %s", verrs[0].Field())
}

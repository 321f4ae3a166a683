package handler

import (
	"errors"
	"net/http"

	"midas_family_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// HandleSuccess writes 200 with the payload, or a bare 200 when there is
// none.
func HandleSuccess(c *gin.Context, data any) {
	if data == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, data)
}

// HandleNotFound reports a missing or forbidden resource. The two are
// deliberately indistinguishable to the caller.
func HandleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"code": errorx.CodeNotFound,
		"msg":  "not found",
	})
}

// HandleError maps a business error to its HTTP status. Unknown errors
// are logged and reported as 500.
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(httpStatusFor(codeErr.Code), gin.H{
			"code": codeErr.Code,
			"msg":  codeErr.Msg,
		})
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code": errorx.ErrServerBusy.Code,
		"msg":  errorx.ErrServerBusy.Msg,
	})
}

func httpStatusFor(code int) int {
	switch code {
	case errorx.CodeInvalidParam, errorx.CodeFamilyExist:
		return http.StatusBadRequest
	case errorx.CodeUserNotExist, errorx.CodeNotFound:
		return http.StatusNotFound
	case errorx.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// HandleParamError reports request binding failures, translating
// validator errors into readable field messages.
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		translatedErrs := RemoveTopStruct(validationErrs.Translate(Trans))
		c.JSON(http.StatusBadRequest, gin.H{
			"code": errorx.ErrInvalidParam.Code,
			"msg":  translatedErrs,
		})
		return
	}

	zap.L().Error("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"code": errorx.ErrInvalidParam.Code,
		"msg":  errorx.ErrInvalidParam.Msg,
	})
}

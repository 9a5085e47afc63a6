package helper

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"gig-marketplace/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

const (
	textError = `error`
	textOk    = `ok`
)

// ResponseHelper ...
type ResponseHelper struct {
	C       *gin.Context
	Status  string
	Message string
	Data    interface{}
	Code    int
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int) ResponseHelper {
	return ResponseHelper{c, status, message, data, code}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int) error {
	res := u.SetResponse(c, textError, message, data, code)

	return u.SendResponse(res)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, http.StatusBadRequest)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"status":  textError,
		"message": "validation failed",
		"errors":  errorResponse,
		"data":    u.EmptyJsonMap(),
	})
	return nil
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, http.StatusUnauthorized)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, http.StatusNotFound)
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, http.StatusForbidden)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, http.StatusOK)

	return u.SendResponse(res)
}

// SendCreated ...
// Send created response to consumers.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, http.StatusCreated)

	return u.SendResponse(res)
}

// SendDomainError maps the service error taxonomy to an HTTP status.
// Infrastructure failures stay a generic 500 so internals never leak.
func (u *HTTPHelper) SendDomainError(c *gin.Context, err error) error {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return u.SendError(c, vErr.Reason, map[string]interface{}{"field": vErr.Field}, http.StatusBadRequest)
	case errors.Is(err, models.ErrDuplicateIdentity),
		errors.Is(err, models.ErrAlreadySeller):
		return u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrUnauthenticated):
		return u.SendUnauthorizedError(c, err.Error(), u.EmptyJsonMap())
	case errors.Is(err, models.ErrForbidden),
		errors.Is(err, models.ErrDuplicateReview):
		return u.SendForbiddenError(c, err.Error(), u.EmptyJsonMap())
	case errors.Is(err, models.ErrNotFound):
		return u.SendNotFoundError(c, err.Error(), u.EmptyJsonMap())
	default:
		return u.SendError(c, "internal server error", u.EmptyJsonMap(), http.StatusInternalServerError)
	}
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	res.C.JSON(res.Code, map[string]interface{}{
		"status":  res.Status,
		"message": res.Message,
		"data":    res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	currentURL := scheme + "://" + r.Host + r.URL.Path + "?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	return currentURL
}

// GeneratePaging builds the pagination block for list responses.
func (u *HTTPHelper) GeneratePaging(page, limit, countOnPage int, totalRecord int64) map[string]interface{} {
	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	return map[string]interface{}{
		"current":       page,
		"total":         totalPages,
		"count":         countOnPage,
		"total_results": totalRecord,
		"per_page":      limit,
	}
}

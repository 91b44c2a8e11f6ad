package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wildsafari/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not found", usecase.NewNotFound("product"), http.StatusNotFound, `{"error":"product not found"}`},
		{"authorization", usecase.NewAuthorization("not your cart item"), http.StatusForbidden, `{"error":"not your cart item"}`},
		{"empty cart", &usecase.EmptyCartError{}, http.StatusBadRequest, `{"error":"cart is empty"}`},
		{"validation", usecase.NewValidation("invalid action"), http.StatusBadRequest, `{"error":"invalid action"}`},
		// 永続化の失敗は詳細を漏らさない
		{"store", usecase.NewStore(errors.New("pq: connection reset")), http.StatusInternalServerError, `{"error":"internal error"}`},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, `{"error":"internal error"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := writeError(c, tc.err)

			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

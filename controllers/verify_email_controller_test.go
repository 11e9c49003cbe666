package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parvarora1603/BTechConnect/services"

	"github.com/stretchr/testify/assert"
)

type staticDomainChecker struct {
	verdict bool
}

func (c staticDomainChecker) IsAcademicDomain(context.Context, string) (bool, error) {
	return c.verdict, nil
}

func TestVerifyEmail(t *testing.T) {
	vc := NewVerifyEmailController(services.NewEmailVerificationService(staticDomainChecker{verdict: false}))

	req := httptest.NewRequest(http.MethodPost, "/api/verify-email", strings.NewReader(`{"email":"a@iitb.ac.in"}`))
	rec := httptest.NewRecorder()
	vc.VerifyEmail(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isAcademic":true}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/api/verify-email", strings.NewReader(`{"email":"a@gmail.com"}`))
	rec = httptest.NewRecorder()
	vc.VerifyEmail(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isAcademic":false}`, rec.Body.String())
}

func TestVerifyEmail_RequiresEmail(t *testing.T) {
	vc := NewVerifyEmailController(services.NewEmailVerificationService(staticDomainChecker{}))

	for _, body := range []string{``, `{}`, `{"email":""}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/verify-email", strings.NewReader(body))
		rec := httptest.NewRecorder()
		vc.VerifyEmail(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

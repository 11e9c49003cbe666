package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDomainChecker struct {
	verdict bool
	err     error
	calls   int
	domains []string
}

func (f *fakeDomainChecker) IsAcademicDomain(_ context.Context, domain string) (bool, error) {
	f.calls++
	f.domains = append(f.domains, domain)
	return f.verdict, f.err
}

func TestIsValidAcademicEmail_ListedDomainSkipsDirectory(t *testing.T) {
	checker := &fakeDomainChecker{verdict: false}
	svc := NewEmailVerificationService(checker)

	assert.True(t, svc.IsValidAcademicEmail(context.Background(), "student@iitb.ac.in"))
	assert.True(t, svc.IsValidAcademicEmail(context.Background(), "student@cse.iitd.ac.in"))
	assert.Equal(t, 0, checker.calls)
}

func TestIsValidAcademicEmail_UnknownDomainFollowsDirectory(t *testing.T) {
	checker := &fakeDomainChecker{verdict: true}
	svc := NewEmailVerificationService(checker)

	assert.True(t, svc.IsValidAcademicEmail(context.Background(), "student@mit.edu"))
	assert.Equal(t, []string{"mit.edu"}, checker.domains)

	checker.verdict = false
	assert.False(t, svc.IsValidAcademicEmail(context.Background(), "someone@gmail.com"))
}

func TestIsValidAcademicEmail_DirectoryErrorFallsBackToStaticVerdict(t *testing.T) {
	checker := &fakeDomainChecker{err: errors.New("directory down")}
	svc := NewEmailVerificationService(checker)

	assert.False(t, svc.IsValidAcademicEmail(context.Background(), "student@unknown.edu"))
	assert.Equal(t, 1, checker.calls)
}

func TestIsValidAcademicEmail_MalformedAddresses(t *testing.T) {
	checker := &fakeDomainChecker{verdict: true}
	svc := NewEmailVerificationService(checker)

	assert.False(t, svc.IsValidAcademicEmail(context.Background(), ""))
	assert.False(t, svc.IsValidAcademicEmail(context.Background(), "no-at-sign"))
	assert.False(t, svc.IsValidAcademicEmail(context.Background(), "trailing@"))
	assert.Equal(t, 0, checker.calls)
}

func TestIsIndianAcademicEmail(t *testing.T) {
	svc := NewEmailVerificationService(nil)

	assert.True(t, svc.IsIndianAcademicEmail("a@nitt.edu"))
	assert.True(t, svc.IsIndianAcademicEmail("a@mail.bits-pilani.ac.in"))
	assert.False(t, svc.IsIndianAcademicEmail("a@notiitb.ac.in.evil.com"))
	// Matching is byte-wise, so an upper-cased listed domain misses the list
	assert.False(t, svc.IsIndianAcademicEmail("a@IITB.AC.IN"))
}

func TestIsValidAcademicEmail_UppercaseListedDomainConsultsDirectory(t *testing.T) {
	checker := &fakeDomainChecker{verdict: false}
	svc := NewEmailVerificationService(checker)

	assert.False(t, svc.IsValidAcademicEmail(context.Background(), "a@IITB.AC.IN"))
	assert.Equal(t, []string{"IITB.AC.IN"}, checker.domains)
}

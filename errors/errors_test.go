package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrstools/dps-store/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "preferences not found",
			expected: "NOT_FOUND: preferences not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.Internal("save failed").
		WithMeta("key", "dps-calc-prefs").
		WithMeta("attempt", 1)

	s.Assert().Equal("dps-calc-prefs", err.Meta["key"])
	s.Assert().Equal(1, err.Meta["attempt"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load preferences")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load preferences", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "preferences not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("preferences not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("connection timeout")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "blob store unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestTypeCheckingHelpers() {
	s.Assert().True(errors.IsNotFound(errors.NotFound("x")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("x")))
	s.Assert().True(errors.IsInternal(errors.Internal("x")))
	s.Assert().True(errors.IsUnavailable(errors.Unavailable("x")))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("x")))

	s.Assert().False(errors.IsNotFound(errors.Internal("x")))
	s.Assert().True(errors.IsInternal(fmt.Errorf("plain error")),
		"unknown errors default to internal")
	s.Assert().False(errors.IsInternal(nil))
}

func (s *ErrorsTestSuite) TestTypeCheckingThroughWrapping() {
	baseErr := errors.NotFound("no preferences persisted yet")
	wrapped := errors.Wrapf(baseErr, "failed to load preferences")

	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestGetCodeAndMessage() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("x")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal("x", errors.GetMessage(errors.NotFound("x")))
	s.Assert().Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	s.Assert().NoError(vb.Build())

	vb.RequiredField("PreferencesRepo")
	vb.InvalidField("Notifier", "must not be nil")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "PreferencesRepo")
}

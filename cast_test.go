package ingestx

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDowncast(t *testing.T) {
	is := assert.New(t)

	var payload any = 42
	v, err := Downcast[int](payload)
	is.NoError(err)
	is.Equal(42, v)

	buf := new(bytes.Buffer)
	w, err := Downcast[io.Writer](buf)
	is.NoError(err)
	is.Same(buf, w)

	s, err := Downcast[fmt.Stringer](buf)
	is.NoError(err)
	is.NotNil(s)
}

func TestDowncastFailed(t *testing.T) {
	testCases := []struct {
		name   string
		source any
		cast   func(any) error
		msg    string
	}{
		{
			name:   "concrete mismatch",
			source: "42",
			cast: func(source any) error {
				v, err := Downcast[int](source)
				assert.Zero(t, v)
				return err
			},
			msg: "failed downcast from string to int",
		},
		{
			name:   "nil source",
			source: nil,
			cast: func(source any) error {
				v, err := Downcast[error](source)
				assert.Nil(t, v)
				return err
			},
			msg: "failed downcast from <nil> to error",
		},
		{
			name:   "interface not implemented",
			source: 3.5,
			cast: func(source any) error {
				_, err := Downcast[io.Reader](source)
				return err
			},
			msg: "failed downcast from float64 to io.Reader",
		},
		{
			name:   "pointer type",
			source: bytes.Buffer{},
			cast: func(source any) error {
				_, err := Downcast[*bytes.Buffer](source)
				return err
			},
			msg: "failed downcast from bytes.Buffer to *bytes.Buffer",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is := assert.New(t)

			err := tc.cast(tc.source)
			is.ErrorIs(err, DowncastFailedError{})

			var target DowncastFailedError
			if is.ErrorAs(err, &target) {
				is.Equal(tc.msg, target.Message)
				is.True(strings.HasSuffix(target.Caller.File, "cast_test.go"), target.Caller.File)
				is.True(strings.Contains(target.Caller.Function, "TestDowncastFailed"), target.Caller.Function)
			}
		})
	}
}

func TestDowncastAt(t *testing.T) {
	is := assert.New(t)

	caller := CallerInfo{File: "/src/orders.go", Function: "orders.Ingest", Line: 99}
	_, err := DowncastAt[map[string]any]([]any{1}, caller)
	is.EqualError(err, "failed downcast from []interface {} to map[string]interface {} (orders.go:99 orders.Ingest)")

	var target DowncastFailedError
	is.ErrorAs(err, &target)
	is.Equal(caller, target.Caller)
}

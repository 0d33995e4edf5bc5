package api

import (
	"net/http"
	"strings"
	"testing"

	"starmaker/coaching-api/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestContactSubmit(t *testing.T) {
	a, _ := newTestAPI(t)

	code, resp := doJSON(t, a, http.MethodPost, "/api/contact", gin.H{
		"fullName": "Asha Rao",
		"email":    "a@b.com",
		"phone":    "+91 98765 43210",
		"subject":  "Admission",
		"message":  "Looking for the NEET foundation batch.",
	}, nil)
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Success)

	ref := resp.Data["ref"].(string)
	require.Len(t, ref, 12)

	var stored model.ContactMessage
	require.NoError(t, a.DB.Where("ref = ?", ref).First(&stored).Error)
	require.Equal(t, "Admission", stored.Subject)
}

func TestContactSubmitOversizedBodyNotPersisted(t *testing.T) {
	a, _ := newTestAPI(t)

	code, resp := doJSON(t, a, http.MethodPost, "/api/contact", gin.H{
		"fullName": "Asha Rao",
		"email":    "a@b.com",
		"subject":  "Admission",
		"message":  strings.Repeat("x", 2<<20),
	}, nil)
	require.Equal(t, http.StatusBadRequest, code)
	require.False(t, resp.Success)

	// The rejected request must not reach the handler
	var rows int64
	require.NoError(t, a.DB.Model(&model.ContactMessage{}).Count(&rows).Error)
	require.Zero(t, rows)
}

func TestContactSubmitValidation(t *testing.T) {
	a, _ := newTestAPI(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing subject", gin.H{"fullName": "Asha", "email": "a@b.com", "message": "hi"}},
		{"missing message", gin.H{"fullName": "Asha", "email": "a@b.com", "subject": "hi"}},
		{"bad email", gin.H{"fullName": "Asha", "email": "nope", "subject": "hi", "message": "hi"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := doJSON(t, a, http.MethodPost, "/api/contact", tc.body, nil)
			require.Equal(t, http.StatusBadRequest, code)
			require.False(t, resp.Success)
		})
	}
}

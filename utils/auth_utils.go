package utils

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the cookie the login endpoints set alongside the JSON token
const AccessTokenCookie = "access_token"

// ExtractBearerToken returns the token from "Authorization: Bearer <t>",
// falling back to the access_token cookie. Empty when neither is present.
func ExtractBearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// GenerateNumericCode generates a random code made of digits only
// Example (length 6): "402917"
func GenerateNumericCode(length int) (string, error) {
	const digits = "0123456789"

	result := make([]byte, length)
	for i := range result {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		result[i] = digits[num.Int64()]
	}

	return string(result), nil
}

package services

import (
	"encoding/json"
	"strings"

	apperrors "pms/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken extracts the acting user id from a bearer token issued by
// the external auth collaborator. The booking engine only uses it as a hint;
// it still re-validates tenant membership before trusting it.
func GetUserIDFromToken(tokenString string) (uint, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "cannot decode token payload", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "cannot parse token claims", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "no user info in token", nil)
	}

	userID, ok := userInfo["userid"].(float64)
	if !ok {
		return 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "no user id in token", nil)
	}

	return uint(userID), nil
}

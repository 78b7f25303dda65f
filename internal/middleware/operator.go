package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// OperatorHeader carries the operator's user id on admin API calls.
const OperatorHeader = "X-Operator-ID"

type authorizer interface {
	Authorize(userID string) error
}

func OperatorAuth(auth authorizer) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if err := auth.Authorize(c.GetHeader(OperatorHeader)); err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

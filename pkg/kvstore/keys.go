package kvstore

import "strings"

const (
	keyNamespace = "ck"
	cartPrefix   = "cart"
	ordersPrefix = "orders"
)

// CartKey returns the namespaced key holding one user's cart blob.
func CartKey(userID string) string {
	return buildKey(cartPrefix, userID)
}

// OrdersKey returns the namespaced key holding the shared order ledger blob.
func OrdersKey() string {
	return buildKey(ordersPrefix)
}

func buildKey(parts ...string) string {
	clean := []string{keyNamespace}
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean = append(clean, strings.TrimSpace(part))
	}
	return strings.Join(clean, ":")
}

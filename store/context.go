package store

import "github.com/gin-gonic/gin"

const storeKey = "store"

// SetStoreToContext mirrors db.SetDBtoContext so handlers reach the
// store without globals.
func SetStoreToContext(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storeKey, s)
		c.Next()
	}
}

func Instance(c *gin.Context) *Store {
	v, ok := c.Get(storeKey)
	if !ok {
		return nil
	}
	s, _ := v.(*Store)
	return s
}

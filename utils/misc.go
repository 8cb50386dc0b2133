package utils

import (
	cryptornd "crypto/rand"
	"math/rand"
	"time"
)

// RandomString returns n alphanumeric characters. Window class names are
// process-global, so each window class gets a random suffix.
func RandomString(n int) string {
	const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	buf := make([]byte, n)
	if _, err := cryptornd.Read(buf); err != nil {
		rand.New(rand.NewSource(time.Now().UnixNano())).Read(buf)
	}
	for i, b := range buf {
		buf[i] = alphanum[int(b)%len(alphanum)]
	}
	return string(buf)
}

package payload

import (
	"errors"
	"fmt"
	"strings"
)

var errBlank = errors.New("must not be blank")

func NotBlank(v string) error {
	if strings.TrimSpace(v) == "" {
		return errBlank
	}
	return nil
}

func Between(min, max int) Check[int] {
	return func(v int) error {
		if v < min || v > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func MaxLen(n int) Check[string] {
	return func(v string) error {
		if len(v) > n {
			return fmt.Errorf("must be at most %d characters", n)
		}
		return nil
	}
}

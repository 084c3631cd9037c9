// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import "fmt"

func errInvalidMax(max int) error {
	return fmt.Errorf("dice: invalid max %d", max)
}

func errInvalidRange(lo, hi int) error {
	return fmt.Errorf("dice: invalid range [%d, %d]", lo, hi)
}

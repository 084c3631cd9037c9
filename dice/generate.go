// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mock_dice github.com/KirkDiggler/osrs-dps/dice Roller
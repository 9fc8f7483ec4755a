package engine

// ObstacleRange returns the inclusive bounds on the number of obstacles
// placed for a difficulty level.
func ObstacleRange(level int) (lo, hi int) {
	switch level {
	case 1:
		return 2, 4
	case 5:
		return 5, 8
	case 10:
		return 8, 12
	case 15:
		return 12, 16
	}
	n := level / 2
	if n < 1 {
		n = 1
	}
	return n, n
}

// GenerateObstacles picks distinct cells below the spawn buffer and above
// the bottom two rows. Placement gives up after ten attempts per obstacle,
// so crowded boards may get fewer cells than requested.
func GenerateObstacles(src Source, level, rows, cols, hiddenRows int) []Cell {
	span := rows - hiddenRows - 2
	if span <= 0 || cols <= 0 {
		return nil
	}

	lo, hi := ObstacleRange(level)
	count := lo
	if hi > lo {
		count += src.Intn(hi - lo + 1)
	}

	seen := make(map[Cell]bool, count)
	cells := make([]Cell, 0, count)
	for attempts := 0; len(cells) < count && attempts < count*10; attempts++ {
		c := Cell{Row: hiddenRows + src.Intn(span), Col: src.Intn(cols)}
		if seen[c] {
			continue
		}
		seen[c] = true
		cells = append(cells, c)
	}
	return cells
}

package testcases

var basicCases = []TestCase{
	{Name: "single", Rows: []string{"#"}},
	{Name: "pair", Rows: []string{"##"}},
	{Name: "empty", Rows: []string{"."}},
	{Name: "empty_grid", Rows: []string{
		"...",
		"...",
		"...",
	}},
	{Name: "column", Rows: []string{
		".##.",
		".##.",
		".##.",
		"....",
	}},
	{Name: "full", Rows: []string{
		"####",
		"####",
		"####",
	}},
	{Name: "staircase", Rows: []string{
		"#...",
		"##..",
		"###.",
		"####",
	}},
	{Name: "comb", Rows: []string{
		"#.#.#",
		"#####",
	}},
	{Name: "single_column", Rows: []string{
		"#",
		"#",
		"#",
	}},
	{Name: "overhang", Rows: []string{
		".##.",
		"####",
	}},
	{Name: "undercut", Rows: []string{
		"####",
		".##.",
	}},
	{Name: "two_runs", Rows: []string{
		"#.##.#",
		"#.##.#",
	}},
}

var holeCases = []TestCase{
	{Name: "ring", Rows: []string{
		".###",
		".#.#",
		".###",
		"....",
	}},
	{Name: "figure_eight", Rows: []string{
		"#####.",
		"#.#.#.",
		"#####.",
	}},
	{Name: "nested", Rows: []string{
		"#######",
		"#.....#",
		"#.###.#",
		"#.#.#.#",
		"#.###.#",
		"#.....#",
		"#######",
	}},
	{Name: "wide_hole", Rows: []string{
		"######",
		"#....#",
		"#....#",
		"######",
	}},
	{Name: "hole_pinch", Rows: []string{
		"###",
		"#.#",
		"##.",
	}},
}

// touchingCases contain cells which meet only at a corner.
var touchingCases = []TestCase{
	{Name: "diagonal_rising", Rows: []string{
		".#",
		"#.",
	}},
	{Name: "diagonal_falling", Rows: []string{
		"#.",
		".#",
	}},
	{Name: "checkerboard", Rows: []string{
		"#.#.",
		".#.#",
		"#.#.",
		".#.#",
	}},
	{Name: "cross", Rows: []string{
		"#.#",
		".#.",
		"#.#",
	}},
}

// bottomCases have filled cells in the last row, which are closed by
// the final pass of the sweep.
var bottomCases = []TestCase{
	{Name: "full_row", Rows: []string{
		"....",
		"####",
	}},
	{Name: "left_corner", Rows: []string{
		"....",
		"##..",
	}},
	{Name: "right_corner", Rows: []string{
		"....",
		"..##",
	}},
	{Name: "middle_run", Rows: []string{
		".....",
		".###.",
	}},
}

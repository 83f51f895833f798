package catalog

import "github.com/adapticode/adapticode/internal/conceptgraph"

// Builtin returns the question bank shipped with the binary. It covers
// the built-in curriculum so the engine works out of the box; a
// configured bank directory replaces it entirely.
func Builtin() *Catalog {
	c, err := New(builtinItems)
	if err != nil {
		// The built-in bank is validated by tests; a bad entry is a
		// programming error.
		panic("catalog: invalid built-in bank: " + err.Error())
	}
	return c
}

var builtinItems = []Item{
	{
		ID:          "factorial",
		Topic:       conceptgraph.ConceptRecursionBasics,
		Description: "Write a recursive function solve(n) that returns n! (the factorial of n). solve(0) is 1.",
		A:           1.0, B: -1.2, C: 0.25,
		InitCode: "solve(n)",
		Tests: []TestCase{
			{Input: "3", Output: "6"},
			{Input: "5", Output: "120"},
		},
		HiddenTests: []TestCase{
			{Input: "0", Output: "1"},
			{Input: "1", Output: "1"},
			{Input: "10", Output: "3628800"},
		},
	},
	{
		ID:          "sum-digits",
		Topic:       conceptgraph.ConceptRecursionBasics,
		Description: "Write a recursive function solve(n) that returns the sum of the decimal digits of the non-negative integer n.",
		A:           1.1, B: -0.9, C: 0.25,
		InitCode: "solve(n)",
		Tests: []TestCase{
			{Input: "123", Output: "6"},
			{Input: "9", Output: "9"},
		},
		HiddenTests: []TestCase{
			{Input: "0", Output: "0"},
			{Input: "99999", Output: "45"},
		},
	},
	{
		ID:          "fibonacci",
		Topic:       conceptgraph.ConceptRecursionBasics,
		Description: "Write a recursive function solve(n) that returns the nth Fibonacci number, where solve(0) = 0 and solve(1) = 1.",
		A:           1.2, B: -0.4, C: 0.25,
		InitCode: "solve(n)",
		Tests: []TestCase{
			{Input: "2", Output: "1"},
			{Input: "6", Output: "8"},
		},
		HiddenTests: []TestCase{
			{Input: "0", Output: "0"},
			{Input: "1", Output: "1"},
			{Input: "15", Output: "610"},
		},
	},
	{
		ID:          "reverse-string",
		Topic:       conceptgraph.ConceptRecursionBasics,
		Description: "Write a recursive function solve(s) that returns the string s reversed. No loops.",
		A:           1.0, B: -0.1, C: 0.25,
		InitCode: "solve(s)",
		Tests: []TestCase{
			{Input: "abc", Output: "cba"},
		},
		HiddenTests: []TestCase{
			{Input: "", Output: ""},
			{Input: "racecar", Output: "racecar"},
			{Input: "hello world", Output: "dlrow olleh"},
		},
	},
	{
		ID:          "tower-of-hanoi",
		Topic:       conceptgraph.ConceptRecursionBasics,
		Description: "Write a recursive function solve(n) that returns the minimum number of moves to solve the Tower of Hanoi puzzle with n disks.",
		A:           1.4, B: 0.5, C: 0.2,
		InitCode: "solve(n)",
		Tests: []TestCase{
			{Input: "1", Output: "1"},
			{Input: "3", Output: "7"},
		},
		HiddenTests: []TestCase{
			{Input: "2", Output: "3"},
			{Input: "10", Output: "1023"},
		},
	},
	{
		ID:          "power-set",
		Topic:       conceptgraph.ConceptBacktracking,
		Description: "Write a function solve(s) that returns every subset of the string s, one subset per line. Order does not matter.",
		A:           1.1, B: -0.3, C: 0.2,
		InitCode: "solve(s)",
		Tests: []TestCase{
			{Input: "ab", Output: "\na\nb\nab", Unordered: true},
		},
		HiddenTests: []TestCase{
			{Input: "a", Output: "\na", Unordered: true},
			{Input: "xyz", Output: "\nx\ny\nz\nxy\nxz\nyz\nxyz", Unordered: true},
		},
	},
	{
		ID:          "permutations",
		Topic:       conceptgraph.ConceptBacktracking,
		Description: "Write a function solve(s) that returns every permutation of the distinct characters of s, one per line. Order does not matter.",
		A:           1.3, B: 0.2, C: 0.2,
		InitCode: "solve(s)",
		Tests: []TestCase{
			{Input: "ab", Output: "ab\nba", Unordered: true},
		},
		HiddenTests: []TestCase{
			{Input: "a", Output: "a", Unordered: true},
			{Input: "abc", Output: "abc\nacb\nbac\nbca\ncab\ncba", Unordered: true},
		},
	},
	{
		ID:          "n-queens-count",
		Topic:       conceptgraph.ConceptBacktracking,
		Description: "Write a function solve(n) that returns the number of distinct ways to place n queens on an n x n chessboard so that no two queens attack each other.",
		A:           1.5, B: 1.1, C: 0.15,
		InitCode: "solve(n)",
		Tests: []TestCase{
			{Input: "4", Output: "2"},
		},
		HiddenTests: []TestCase{
			{Input: "1", Output: "1"},
			{Input: "6", Output: "4"},
			{Input: "8", Output: "92"},
		},
	},
	{
		ID:          "climbing-stairs",
		Topic:       conceptgraph.ConceptDynamicProg,
		Description: "Write a function solve(n) that returns the number of distinct ways to climb a staircase of n steps taking 1 or 2 steps at a time. Memoize the recursion so solve(40) finishes instantly.",
		A:           1.2, B: 0.0, C: 0.2,
		InitCode: "solve(n)",
		Tests: []TestCase{
			{Input: "2", Output: "2"},
			{Input: "4", Output: "5"},
		},
		HiddenTests: []TestCase{
			{Input: "1", Output: "1"},
			{Input: "10", Output: "89"},
			{Input: "40", Output: "165580141"},
		},
	},
	{
		ID:          "coin-change",
		Topic:       conceptgraph.ConceptDynamicProg,
		Description: "Write a function solve(amount) that returns the minimum number of coins from {1, 5, 10, 25} needed to make the given amount, or -1 if it cannot be made.",
		A:           1.3, B: 0.6, C: 0.15,
		InitCode: "solve(amount)",
		Tests: []TestCase{
			{Input: "11", Output: "2"},
			{Input: "30", Output: "2"},
		},
		HiddenTests: []TestCase{
			{Input: "0", Output: "0"},
			{Input: "3", Output: "3"},
			{Input: "99", Output: "9"},
		},
	},
	{
		ID:          "longest-common-subsequence",
		Topic:       conceptgraph.ConceptDynamicProg,
		Description: "Write a function solve(a, b) that returns the length of the longest common subsequence of the strings a and b.",
		A:           1.5, B: 1.3, C: 0.1,
		InitCode: "solve(a, b)",
		Tests: []TestCase{
			{Input: "abcde ace", Output: "3"},
		},
		HiddenTests: []TestCase{
			{Input: "abc abc", Output: "3"},
			{Input: "abc def", Output: "0"},
			{Input: "aggtab gxtxayb", Output: "4"},
		},
	},
}

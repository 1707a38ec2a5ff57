package ports

// SelectionPort disambiguates between multiple search hits. Choose
// returns the index of the picked candidate. Headless callers supply a
// deterministic strategy; the CLI supplies a prompt.
type SelectionPort interface {
	Choose(candidates []string) (int, error)
}

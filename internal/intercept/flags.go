package intercept

// Flag vocabulary accepted on the command line and derived from the
// environment. Both paths produce the same flag strings.
const (
	FlagMorph     = "--morph"
	FlagMorphLLM  = "--morphllm"
	FlagMorphOnly = "--morph-only"
	FlagMorphFast = "--morph-fast"
	FlagNoMorph   = "--no-morph"
)

// envFlags maps boolean-ish environment variables to their flag equivalents.
var envFlags = []struct {
	Variable string
	Flag     string
}{
	{"MORPH_ENABLED", FlagMorph},
	{"MORPH_ONLY", FlagMorphOnly},
	{"MORPH_FAST", FlagMorphFast},
	{"NO_MORPH", FlagNoMorph},
}

var knownFlags = map[string]bool{
	FlagMorph:     true,
	FlagMorphLLM:  true,
	FlagMorphOnly: true,
	FlagMorphFast: true,
	FlagNoMorph:   true,
}

// ResolveFlags combines explicit command-line arguments with environment
// fallbacks into the active flag set. Unknown arguments are ignored.
func ResolveFlags(args []string, getenv func(string) string) []string {
	var flags []string

	for _, ef := range envFlags {
		if getenv(ef.Variable) != "" {
			flags = append(flags, ef.Flag)
		}
	}

	for _, arg := range args {
		if knownFlags[arg] {
			flags = append(flags, arg)
		}
	}

	return flags
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

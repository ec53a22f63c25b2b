package runner

import (
	"bufio"
	"errors"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/coregx/regexer"
	"github.com/coregx/regexer/nfa"
)

// Options holds the parsed command-line configuration.
type Options struct {
	Regex   string // pattern to compile
	Text    string // one-shot text to match; stdin lines when empty
	Stats   bool
	Silent  bool
	Verbose bool
}

// ParseFlags parses the command-line flags into Options.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Byte-level NFA regular expression matcher.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Regex, "regex", "re", "", "regular expression to match"),
		flagSet.StringVarP(&opts.Text, "text", "t", "", "text to match against (stdin lines when omitted)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Stats, "stats", "st", false, "print allocation statistics for the compiled matcher"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display regexer version"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

// Run compiles the pattern and reports the verdict for the given text,
// or greps stdin line by line when no text was supplied.
func Run(opts *Options) error {
	if opts.Regex == "" {
		return errorutil.New("no regular expression given, use -regex")
	}

	re, err := regexer.Compile(opts.Regex)
	if err != nil {
		var syntaxErr *nfa.SyntaxError
		if errors.As(err, &syntaxErr) {
			gologger.Fatal().Msgf("invalid pattern: %s", syntaxErr)
		}
		return err
	}

	if opts.Stats {
		printMemoryUsage(re)
	}

	if opts.Text != "" {
		if re.PatternInLine(opts.Text) {
			gologger.Info().Msgf("MATCHED!!!")
		} else {
			gologger.Info().Msgf("NOT MATCHED!!!")
		}
		if opts.Stats {
			printMemoryUsage(re)
		}
		return nil
	}

	if !fileutil.HasStdin() {
		return errorutil.New("no input found, use -text or pipe lines on stdin")
	}

	// grep mode: print every stdin line the pattern is found in
	matched := 0
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if re.PatternInLine(line) {
			matched++
			gologger.Silent().Msgf("%s", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	gologger.Verbose().Msgf("%d matching lines", matched)
	if opts.Stats {
		printMemoryUsage(re)
	}
	return nil
}

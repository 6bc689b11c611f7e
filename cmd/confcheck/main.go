// Command confcheck resolves the backend configuration for a given
// environment and reports the outcome without starting the server.
//
// It is meant for CI pipelines and deploy hooks: exit code 0 means the
// configuration set would boot, 1 means validation failed (every problem is
// listed), 2 means the environment name itself is unknown.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/MKhiriev/engo-config/internal/app"
	"github.com/MKhiriev/engo-config/internal/config"
)

const (
	exitInvalidConfig      = 1
	exitUnknownEnvironment = 2
)

func main() {
	cli := kingpin.New("confcheck", "Validate engo backend configuration without starting the server")
	environmentName := cli.Flag("env", "Target environment (local, staging, production)").Default("local").String()
	files := cli.Flag("file", "Configuration layer file, lowest precedence first; repeatable (.env, .yaml, .json)").Strings()
	useEnviron := cli.Flag("environ", "Apply the process environment as the highest-precedence layer").Bool()
	printResolved := cli.Flag("print", "Print the resolved fields on success (secrets redacted)").Bool()

	kingpin.MustParse(cli.Parse(os.Args[1:]))

	builder := config.NewBuilder(*environmentName)
	for _, path := range *files {
		switch {
		case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
			builder = builder.WithYAMLFile(path)
		case strings.HasSuffix(path, ".json"):
			builder = builder.WithJSONFile(path)
		default:
			builder = builder.WithDotenvFile(path)
		}
	}
	if *useEnviron {
		builder = builder.WithEnviron("")
	}

	resolved, err := builder.Resolve(app.Schema())
	if err != nil {
		report(err)
	}

	fmt.Printf("configuration for %q is valid\n", *environmentName)
	if *printResolved {
		printFields(resolved)
	}
}

// report prints every discovered problem and exits with the code matching
// the failure class.
func report(err error) {
	var resolveErr *config.ResolveError
	if errors.As(err, &resolveErr) {
		problems := resolveErr.Problems()
		fmt.Fprintf(os.Stderr, "configuration is invalid (%d problems):\n", len(problems))
		for _, problem := range problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", problem)
		}
		os.Exit(exitInvalidConfig)
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	if errors.Is(err, config.ErrUnknownEnvironment) {
		os.Exit(exitUnknownEnvironment)
	}
	os.Exit(exitInvalidConfig)
}

// secretFields are never printed, even with --print.
var secretFields = map[string]struct{}{
	app.KeyJWTSecret: {},
}

func printFields(resolved *config.Resolved) {
	for _, name := range resolved.Keys() {
		value := resolved.Raw(name)
		if _, secret := secretFields[name]; secret {
			value = "[REDACTED]"
		}
		fmt.Printf("%s=%s\n", name, value)
	}
}

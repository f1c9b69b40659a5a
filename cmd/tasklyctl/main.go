package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tasklyhq/taskly/internal/cli"
	"github.com/tasklyhq/taskly/internal/config"
	"github.com/tasklyhq/taskly/internal/domain"
)

const usage = `usage: tasklyctl <command> [args]

commands:
  list [-filter all|active|done|overdue|pinned] [-category NAME] [-search TEXT] [-sort MODE]
  stats
  add [-priority high|medium|low] [-category NAME] [-due YYYY-MM-DD] TEXT
  export FILE
  import FILE
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	deps := cli.NewDependencies(cfg)

	switch os.Args[1] {
	case "list":
		err = runList(deps, os.Args[2:])
	case "stats":
		err = cli.StatsCommand(deps)
	case "add":
		err = runAdd(deps, os.Args[2:])
	case "export":
		err = runFileArg(os.Args[2:], "export", func(path string) error {
			return cli.ExportCommand(deps, path)
		})
	case "import":
		err = runFileArg(os.Args[2:], "import", func(path string) error {
			return cli.ImportCommand(deps, path)
		})
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runList(deps *cli.Dependencies, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	filter := fs.String("filter", "all", "status filter")
	category := fs.String("category", "", "category filter")
	search := fs.String("search", "", "search text")
	sortMode := fs.String("sort", "manual", "sort mode")
	if err := fs.Parse(args); err != nil {
		return err
	}

	criteria := domain.Criteria{
		Category: *category,
		Search:   *search,
	}

	statuses := map[string]domain.StatusFilter{
		"all": domain.FilterAll, "active": domain.FilterActive, "done": domain.FilterDone,
		"overdue": domain.FilterOverdue, "pinned": domain.FilterPinned,
	}
	st, ok := statuses[*filter]
	if !ok {
		return fmt.Errorf("unknown filter %q", *filter)
	}
	criteria.Status = st

	sorts := map[string]domain.SortMode{
		"manual": domain.SortManual, "date-desc": domain.SortDateDesc, "date-asc": domain.SortDateAsc,
		"alpha": domain.SortAlpha, "due": domain.SortDue, "priority": domain.SortPriority,
	}
	sm, ok := sorts[*sortMode]
	if !ok {
		return fmt.Errorf("unknown sort mode %q", *sortMode)
	}
	criteria.Sort = sm

	return cli.ListCommand(deps, criteria)
}

func runAdd(deps *cli.Dependencies, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	priority := fs.String("priority", "medium", "priority")
	category := fs.String("category", "", "category")
	due := fs.String("due", "", "due date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("add: missing task text")
	}

	p := domain.Priority(*priority)
	switch p {
	case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
	default:
		return fmt.Errorf("unknown priority %q", *priority)
	}

	return cli.AddCommand(deps, fs.Arg(0), p, *category, *due)
}

func runFileArg(args []string, name string, fn func(string) error) error {
	if len(args) < 1 {
		return fmt.Errorf("%s: missing file argument", name)
	}
	return fn(args[0])
}

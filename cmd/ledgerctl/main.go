// Command ledgerctl talks to a running ledger server.
//
//	ledgerctl [-server URL] export [-o file]
//	ledgerctl [-server URL] import <file>
//	ledgerctl [-server URL] balances [-participant id]
//	ledgerctl [-server URL] report [-tx id] [-participant id]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"text/tabwriter"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/mmynk/dongledger/internal/models"
	"github.com/mmynk/dongledger/pkg/api"
	"github.com/mmynk/dongledger/pkg/api/apiconnect"
)

// cliConfig is read from the environment; flags override it.
type cliConfig struct {
	Server string `envconfig:"LEDGER_URL" default:"http://localhost:8080"`
}

var errUsage = errors.New("usage: ledgerctl [-server URL] export|import|balances|report [flags]")

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, http.DefaultClient); err != nil {
		fmt.Fprintln(os.Stderr, "ledgerctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, httpClient connect.HTTPClient) error {
	var cfg cliConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}

	fs := flag.NewFlagSet("ledgerctl", flag.ContinueOnError)
	server := fs.String("server", cfg.Server, "ledger server base URL (LEDGER_URL)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	client := apiconnect.NewLedgerServiceClient(httpClient, *server)
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "export":
		return export(ctx, client, rest, out)
	case "import":
		return importState(ctx, client, rest, out)
	case "balances":
		return balances(ctx, client, rest, out)
	case "report":
		return shareReport(ctx, client, rest, out)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func export(ctx context.Context, client apiconnect.LedgerServiceClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	path := fs.String("o", "", "write to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := client.GetState(ctx, connect.NewRequest(&api.GetStateRequest{}))
	if err != nil {
		return fmt.Errorf("failed to fetch state: %w", err)
	}
	data, err := json.MarshalIndent(resp.Msg.State, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	data = append(data, '\n')

	if *path == "" {
		_, err = out.Write(data)
		return err
	}
	if err := os.WriteFile(*path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *path, err)
	}
	return nil
}

func importState(ctx context.Context, client apiconnect.LedgerServiceClient, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: ledgerctl import <file>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	resp, err := client.ReplaceState(ctx, connect.NewRequest(&api.ReplaceStateRequest{State: state.Normalize()}))
	if err != nil {
		return fmt.Errorf("failed to import state: %w", err)
	}
	s := resp.Msg.State
	fmt.Fprintf(out, "Imported %d participants, %d items, %d expense records\n",
		len(s.Participants), len(s.Items), len(s.Expenses))
	return nil
}

func balances(ctx context.Context, client apiconnect.LedgerServiceClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("balances", flag.ContinueOnError)
	participant := fs.String("participant", "", "only this participant's records")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := client.GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{ParticipantID: *participant}))
	if err != nil {
		return fmt.Errorf("failed to fetch balances: %w", err)
	}
	if len(resp.Msg.Balances) == 0 {
		fmt.Fprintln(out, "All settled")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tOWES\tRECORDS")
	for _, b := range resp.Msg.Balances {
		name := b.Name
		if b.Orphaned {
			name += " (removed)"
		}
		fmt.Fprintf(w, "%s\t%.0f\t%d\n", name, b.Total, b.Records)
	}
	return w.Flush()
}

func shareReport(ctx context.Context, client apiconnect.LedgerServiceClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	tx := fs.String("tx", "", "report a single transaction")
	participant := fs.String("participant", "", "only this participant's records (full report)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := client.ShareReport(ctx, connect.NewRequest(&api.ShareReportRequest{
		TransactionID: *tx,
		ParticipantID: *participant,
	}))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = io.WriteString(out, resp.Msg.Text)
	return err
}

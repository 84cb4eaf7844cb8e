package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type globalOptions struct {
	RPC      string `short:"r" long:"rpc" env:"REGISTRY_RPC" description:"Network address of the Neo RPC server" required:"true"`
	Contract string `short:"c" long:"contract" env:"REGISTRY_CONTRACT" description:"Address or LE hash of the Registry contract" required:"true"`
	Timeout  uint   `long:"timeout" default:"15" description:"Dial and request timeout in seconds"`
	Debug    bool   `long:"debug" description:"Enable debug logs"`
	JSONLog  bool   `long:"jsonlog" description:"Log in JSON format"`
}

var opts globalOptions

func newParser() *flags.Parser {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)

	for _, c := range []struct {
		name, short, long string
		cmd               any
	}{
		{"params", "Show registry settings", "Prints owner, payout addresses and fee schedule of the registry.", new(paramsCommand)},
		{"node", "Show node record", "Prints record, boosts and merit bonus of the node with the given address.", new(nodeCommand)},
		{"nodes", "List registered nodes", "Iterates over all registered nodes and prints their records.", new(nodesCommand)},
		{"storage", "Dump contract storage", "Reads raw storage of the registry at the latest state root and prints decoded items.", new(storageCommand)},
		{"events", "Show transaction events", "Prints registry notifications thrown by the transaction with the given hash.", new(eventsCommand)},
	} {
		_, err := parser.AddCommand(c.name, c.short, c.long, c.cmd)
		if err != nil {
			panic(err)
		}
	}

	return parser
}

func main() {
	_, err := newParser().Parse()
	if err != nil {
		// command failures are logged by withRegistry
		var fe *flags.Error
		if errors.As(err, &fe) {
			if fe.Type == flags.ErrHelp {
				fmt.Fprintln(os.Stdout, fe.Message)
				os.Exit(0)
			}
			fmt.Fprintln(os.Stderr, fe.Message)
		}
		os.Exit(1)
	}
}

// withRegistry connects to the configured RPC server and runs f against the
// configured Registry contract.
func withRegistry(f func(*remoteRegistry, *zap.Logger) error) error {
	log := newLogger(opts.Debug, opts.JSONLog)
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	r, err := newRemoteRegistry(ctx, opts.RPC, opts.Contract, opts.Timeout)
	if err != nil {
		log.Error("init remote registry", zap.Error(err))
		return err
	}

	defer r.close()

	log.Debug("connected to the RPC server",
		zap.String("endpoint", opts.RPC),
		zap.Stringer("contract", r.hash),
		zap.Uint32("height", r.currentBlock))

	err = f(r, log)
	if err != nil {
		log.Error("command failed", zap.Error(err))
	}

	return err
}

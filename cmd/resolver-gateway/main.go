package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"

	"github.com/davidlaprade/umbra-protocol/cmd/flags"
	"github.com/davidlaprade/umbra-protocol/ens"
	"github.com/davidlaprade/umbra-protocol/httpserver"
)

var listenAddrFlag = &cli.StringFlag{
	Name:  "listen-addr",
	Value: "127.0.0.1:8080",
	Usage: "address to listen on for API",
}

func main() {
	app := &cli.App{
		Name:  "resolver-gateway",
		Usage: "Serve stealth-key resolver lookups over HTTP",
		Flags: append([]cli.Flag{
			flags.RPCAddrFlag,
			flags.RegistryAddrFlag,
			listenAddrFlag,
		}, flags.CommonFlags...),
		Action: func(cCtx *cli.Context) error {
			rpcAddress := cCtx.String(flags.RPCAddrFlag.Name)
			registryAddr := cCtx.String(flags.RegistryAddrFlag.Name)
			listenAddr := cCtx.String(listenAddrFlag.Name)

			logger := flags.SetupLogger(cCtx)

			logger.Info("Connecting to Ethereum RPC", "address", rpcAddress)
			ethClient, err := ethclient.Dial(rpcAddress)
			if err != nil {
				logger.Error("Failed to dial RPC", "err", err)
				return err
			}

			resolverFactory := ens.NewResolverFactory(ethClient, ethClient)
			resolver, err := resolverFactory.ResolverFor(common.HexToAddress(registryAddr))
			if err != nil {
				logger.Error("Failed to create resolver client", "err", err)
				return err
			}

			cfg := flags.ConfigureServer(cCtx, logger, listenAddr)
			handler := httpserver.NewHandler(resolver, logger)

			server, err := httpserver.New(cfg, handler)
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			logger.Info("Starting server")
			server.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			logger.Info("Server shutdown complete")

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

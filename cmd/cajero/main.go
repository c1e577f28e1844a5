// Command cajero runs the terminal account ledger.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/dmunera/cajero/internal/accountrepo"
	"github.com/dmunera/cajero/internal/cli"
	"github.com/dmunera/cajero/internal/ledgerservice"
	"github.com/dmunera/cajero/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := cli.GetLogger(config)
	ctx := logger.WithContext(context.Background())

	repo := accountrepo.NewRepoJSON(config.DataFile)
	repo.Load(ctx)

	ledger := ledgerservice.New(repo, config.HistoryPageSize)

	logger.Info().Str("data_file", config.DataFile).Msg("ledger session started")

	cli.New(ledger, os.Stdin, os.Stdout, logger).Run()
}

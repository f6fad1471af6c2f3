package main

import (
	"github.com/htessier/movielens-api/internal/app"
	"github.com/htessier/movielens-api/internal/config"
)

func main() {
	app.Go(config.Load())
}

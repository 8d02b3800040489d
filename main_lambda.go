//go:build lambda

package main

import (
	_ "embed"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

//go:embed catalog.json
var embeddedCatalog string

func main() {
	log, err := newLogger(false)
	if err != nil {
		panic(err)
	}
	cat, err := catalogFromJSON(embeddedCatalog)
	if err != nil {
		log.Fatal("embedded catalog", zap.Error(err))
	}
	warnDangling(cat, log)

	s := &server{cat: cat, log: log}
	lambda.Start(s.handler)
}

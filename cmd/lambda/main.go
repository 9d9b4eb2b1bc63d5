package main

import "github.com/sh5080/quickvest-go/pkg/serverless"

func main() {
	serverless.LambdaMain()
}

package main

import "github.com/adanyl0v/go-tasks/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustOpenStorage()
	defer app.CloseStorage()

	app.MustInitServices()
	defer app.CloseServices()

	app.MustListenAndServeHTTP()
}

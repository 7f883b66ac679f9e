package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	_ "oper-review-backend/docs" // This is needed for swag
)

//	@title			Oper Review Backend API
//	@version		1.0
//	@description	Backend API for operational reviews: the unit hierarchy, per-unit report templates, reports and the report plugin catalog.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

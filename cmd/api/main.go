package main

import (
	"garage_workflow/internal/adapter/http/routes"
	"garage_workflow/internal/config"
)

// @title           Garage Workflow API
// @version         1.0
// @description     Garage job lifecycle (jobs, tasks, estimates, invoices, inventory) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey TenantID
// @in header
// @name X-Tenant-ID
// @description Tenant that owns every resource of the request.

func main() {
	cfg := config.Load()
	routes.Run(cfg)
}

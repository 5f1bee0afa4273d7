package routes

import (
	"garage_workflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs      = "/jobs"
	PathTasks     = "/tasks"
	PathInventory = "/inventory"
)

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, taskHandler *handlers.TaskHandler, estimateHandler *handlers.EstimateHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.PATCH("/:job_id/mechanic", jobHandler.AssignMechanic)
		jobs.PATCH("/:job_id/status", jobHandler.TransitionStatus)
		jobs.DELETE("/:job_id", jobHandler.DeleteJob)
		jobs.GET("/:job_id/tasks", jobHandler.ListTasks)
		jobs.POST("/:job_id/tasks", taskHandler.CreateTask)
		jobs.POST("/:job_id/estimate", estimateHandler.CreateEstimate)
	}
}

func addTaskRoutes(rg *gin.RouterGroup, taskHandler *handlers.TaskHandler) {
	tasks := rg.Group(PathTasks)
	{
		tasks.GET("/:task_id", taskHandler.GetTask)
		tasks.PATCH("/:task_id", taskHandler.UpdateTask)
		tasks.POST("/:task_id/approve", taskHandler.ApproveTask)
		tasks.POST("/:task_id/complete", taskHandler.CompleteTask)
		tasks.DELETE("/:task_id", taskHandler.DeleteTask)
	}
}

func addInventoryRoutes(rg *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	items := rg.Group(PathInventory + "/items")
	{
		items.POST("", inventoryHandler.CreateItem)
		items.GET("/:item_id", inventoryHandler.GetItem)
		items.POST("/:item_id/receive", inventoryHandler.ReceiveStock)
	}
}

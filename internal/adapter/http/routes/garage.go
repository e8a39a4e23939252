package routes

import (
	"garage_manager/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCars     = "/cars"
	PathPackages = "/packages"
	PathServices = "/services"
)

func addGarageRoutes(
	rg *gin.RouterGroup,
	carHandler *handlers.CarHandler,
	packageHandler *handlers.PackageHandler,
	serviceHandler *handlers.ServiceJobHandler,
) {
	cars := rg.Group(PathCars)
	{
		cars.POST("", carHandler.CreateCar)
		cars.GET("", carHandler.ListCars)
		cars.GET("/:id", carHandler.GetCar)
		cars.PUT("/:id", carHandler.UpdateCar)
		cars.DELETE("/:id", carHandler.DeleteCar)
	}

	packages := rg.Group(PathPackages)
	{
		packages.POST("", packageHandler.CreatePackage)
		packages.GET("", packageHandler.ListPackages)
		packages.GET("/:id", packageHandler.GetPackage)
		packages.PUT("/:id", packageHandler.UpdatePackage)
		packages.DELETE("/:id", packageHandler.DeletePackage)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/car/:car_id", serviceHandler.ListServicesByCar)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}
}

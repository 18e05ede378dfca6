package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/gabrielhrms/habitflow-lambda/internal/config"
	"github.com/gabrielhrms/habitflow-lambda/internal/container"
	"github.com/gabrielhrms/habitflow-lambda/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		HabitHandler:     c.HabitContainer.Handler,
		ProgressHandler:  c.ProgressContainer.Handler,
		OverviewHandler:  c.OverviewContainer.Handler,
		AnalyticsHandler: c.AnalyticsContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r)
		lambda.Start(handler)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Logger().Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		config.Logger().WithError(err).Fatal("Server stopped")
	}
}

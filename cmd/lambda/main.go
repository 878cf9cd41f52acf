package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/appraisal-api/internal/container"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	c, err := container.New(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize container")
	}
	adapter = httpadapter.New(c.Router())
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}

//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/mapview"
	"github.com/zoo-visit-planner/internal/usecase"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	routeFlag := flag.String("route", "elephant,giraffe,lion,panda", "Comma separated route of location ids")
	width := flag.Float64("width", 800, "Warm-up width to wait for")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.PlanSavedEvent{
		EventID: uuid.New(),
		PlanID:  time.Now().UnixMilli(),
		Name:    "Test plan",
		Route:   strings.Split(*routeFlag, ","),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamPlanSaved,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamPlanSaved)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Plan ID: %d\n", event.PlanID)
	fmt.Printf("   Route: %s\n", strings.Join(event.Route, " -> "))

	// Ожидание прогретой карты в кеше
	key := "map:svg:" + usecase.MapCacheKey(event.Route, mapview.NewSurface(*width, 1))
	fmt.Printf("\nWaiting for warmed map %s...\n", key)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for warmed map")
			return
		case <-ticker.C:
			svg, err := client.Get(ctx, key).Bytes()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				log.Fatalf("Failed to read cache: %v", err)
			}
			fmt.Printf("Map warmed: %d bytes\n", len(svg))
			return
		}
	}
}

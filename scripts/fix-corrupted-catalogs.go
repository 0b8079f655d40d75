package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-catalog/internal/entities/catalog"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	prefix := os.Getenv("REDIS_KEY_PREFIX")
	if prefix == "" {
		prefix = "catalog:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted catalog documents...")

	docPrefix := prefix + "doc:"
	indexKey := prefix + "index"

	indexed, err := client.SMembers(ctx, indexKey).Result()
	if err != nil {
		log.Fatal("Failed to read catalog index:", err)
	}
	inIndex := make(map[string]bool, len(indexed))
	for _, p := range indexed {
		inIndex[p] = true
	}

	iter := client.Scan(ctx, 0, docPrefix+"*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		path := strings.TrimPrefix(key, docPrefix)
		checkedCount++

		fields, err := client.HGetAll(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		data, ok := fields["data"]
		if !ok {
			fmt.Printf("✗ Missing data field in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if _, err := catalog.Parse([]byte(data), catalog.Format(fields["format"])); err != nil {
			fmt.Printf("✗ Unparseable %s document in %s: %v\n", fields["format"], key, err)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if !inIndex[path] {
			fmt.Printf("! %s is stored but missing from %s, re-indexing\n", path, indexKey)
			if err := client.SAdd(ctx, indexKey, path).Err(); err != nil {
				fmt.Printf("Failed to index %s: %v\n", path, err)
			}
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d documents, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input aborts

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		path := strings.TrimPrefix(key, docPrefix)
		_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.SRem(ctx, indexKey, path)
			return nil
		})
		if err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

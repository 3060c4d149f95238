package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const (
	listingCacheTTL = 5 * time.Minute
	otpTTL          = 10 * time.Minute
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

func listingKey(id string) string {
	return "fixly:listing:" + id
}

// CacheListing stores a serialized listing for the browse detail endpoint.
func CacheListing(id string, payload []byte) error {
	if Client == nil {
		return nil
	}
	return Client.Set(Ctx, listingKey(id), payload, listingCacheTTL).Err()
}

// GetCachedListing returns the cached listing payload, or nil on a miss.
func GetCachedListing(id string) []byte {
	if Client == nil {
		return nil
	}
	payload, err := Client.Get(Ctx, listingKey(id)).Bytes()
	if err != nil {
		return nil
	}
	return payload
}

// InvalidateListing drops a listing from the cache after a provider edit.
func InvalidateListing(id string) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, listingKey(id))
}

// StoreResetOTP keeps a password-reset OTP for its validity window.
func StoreResetOTP(email, otp string) error {
	if Client == nil {
		return fmt.Errorf("redis is not initialized")
	}
	return Client.Set(Ctx, "fixly:reset-otp:"+email, otp, otpTTL).Err()
}

// GetResetOTP fetches the stored OTP for an email, empty string if expired.
func GetResetOTP(email string) string {
	if Client == nil {
		return ""
	}
	otp, err := Client.Get(Ctx, "fixly:reset-otp:"+email).Result()
	if err != nil {
		return ""
	}
	return otp
}

// ClearResetOTP removes a consumed OTP.
func ClearResetOTP(email string) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, "fixly:reset-otp:"+email)
}

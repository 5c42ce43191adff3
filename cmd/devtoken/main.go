// Command devtoken prints a signed bearer token for local testing.
//
//	go run ./cmd/devtoken -role sellerUser -id 2f6b7c9e-8d7a-4a8e-9c57-0d2a7f1e3b44
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/jwt"
	"marketplace-api/pkg/utils"

	"github.com/google/uuid"
)

func main() {
	role := flag.String("role", string(entity.RoleMember), "role tag: adminuser, guestuser, memberuser or sellerUser")
	id := flag.String("id", "", "subject id (uuid)")
	flag.Parse()

	if !entity.RoleType(*role).IsValid() {
		log.Fatalf("unknown role %q", *role)
	}
	if _, err := uuid.Parse(*id); err != nil {
		log.Fatalf("invalid id %q: %v", *id, err)
	}

	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	manager, err := jwt.NewManager(config.JWT.Secret, config.JWT.Leeway, time.Duration(config.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		log.Fatalf("Failed to init token manager: %v", err)
	}

	token, err := manager.Sign(*id, *role)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}

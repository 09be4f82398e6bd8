package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
	"github.com/custodia-labs/psychmatch/internal/core/services"
)

type createUserBody struct {
	Email    string   `json:"email" form:"email"`
	Username string   `json:"username" form:"username"`
	Hobbies  []string `json:"hobbies" form:"hobbies"`
}

type sendMessageBody struct {
	Content string `json:"content" form:"content"`
}

func (s *Server) index(c *fiber.Ctx) error {
	return c.SendString("psychmatch")
}

func (s *Server) createUser(c *fiber.Ctx) error {
	var body createUserBody
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	uid, err := s.ports.Users.Create(c.UserContext(), driving.CreateUserRequest{
		Email:    body.Email,
		Username: body.Username,
		Hobbies:  body.Hobbies,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": uid})
}

func (s *Server) userInfo(c *fiber.Ctx) error {
	doc, err := s.ports.Users.Get(c.UserContext(), c.Params("uid"))
	if err != nil {
		return err
	}
	return c.JSON(domain.UserFromDocument(*doc))
}

func (s *Server) confirmUser(c *fiber.Ctx) error {
	uid := c.Query("uid")
	if uid == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing uid query parameter")
	}
	return s.verify(c, uid)
}

func (s *Server) verifyUser(c *fiber.Ctx) error {
	return s.verify(c, c.Params("uid"))
}

func (s *Server) verify(c *fiber.Ctx, uid string) error {
	if err := s.ports.Users.Verify(c.UserContext(), uid); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"id": uid, "verified": true})
}

func (s *Server) matches(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	opts := driving.MatchSearchOptions{}
	if strings.EqualFold(c.Query("sort"), "overall") {
		opts.Sorts = append(opts.Sorts, driving.MatchSort{Compare: services.ByOverall, Reverse: true})
	}

	records, err := s.ports.Matches.Search(c.UserContext(), uid, opts)
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// userMessages lists the participant pairs of the caller's conversations, not their contents.
func (s *Server) userMessages(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	convs, err := s.ports.Messages.Conversations(c.UserContext(), uid)
	if err != nil {
		return err
	}
	participants := make([][2]string, len(convs))
	for i, conv := range convs {
		participants[i] = conv.Participants
	}
	return c.JSON(participants)
}

func (s *Server) conversation(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	conv, err := s.ports.Messages.Conversation(c.UserContext(), uid, c.Params("partner"))
	if err != nil {
		return err
	}
	return c.JSON(conv)
}

func (s *Server) sendMessage(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var body sendMessageBody
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	id, err := s.ports.Messages.Send(c.UserContext(), uid, c.Params("partner"), body.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func callerID(c *fiber.Ctx) (string, error) {
	uid := strings.TrimSpace(c.Get(HeaderUID))
	if uid == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "missing uid header")
	}
	return uid, nil
}

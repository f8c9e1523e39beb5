package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cheonTH/singlelife/internal/api"
	"github.com/cheonTH/singlelife/internal/board"
	"github.com/cheonTH/singlelife/internal/models"
)

func (a *App) boardScreen(ctx context.Context) {
	category := models.CategoryAll
	term := ""

	if err := a.store.FetchAll(ctx); err != nil {
		a.notice(err)
		// Prior posts, if any, are still shown below.
	}

	for {
		visible := board.FilterSort(a.store.Posts(), category, term)
		header := fmt.Sprintf("%s board", category)
		if strings.TrimSpace(term) != "" {
			header = fmt.Sprintf("results for %q", strings.TrimSpace(term))
		}
		fmt.Printf("\n== %s ==\n", header)
		if len(a.store.Posts()) == 0 {
			fmt.Println("No posts yet.")
		} else if len(visible) == 0 {
			fmt.Println("No posts in this category.")
		}
		for _, p := range visible {
			fmt.Printf("  #%d [%s] %s — %s (♥%d 💬%d) %s\n",
				p.ID, p.Category, p.Title, p.NickName, p.LikeCount, p.CommentCount,
				p.WritingTime.Format("2006-01-02 15:04"))
		}

		fmt.Println("c <all|tip|free|question>  s <term>  v <id>  w) write  r) refresh  b) back")
		input := a.prompt("board> ")
		cmd, arg := splitCmd(input)
		switch cmd {
		case "c":
			category = models.ParseCategory(arg)
		case "s":
			term = arg
		case "v":
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Println("Usage: v <post id>")
				continue
			}
			a.postScreen(ctx, id)
		case "w":
			a.writeScreen(ctx, nil)
		case "r":
			if err := a.store.FetchAll(ctx); err != nil {
				a.notice(err)
			}
		case "b", "q":
			return
		default:
			fmt.Println("Unknown command.")
		}
	}
}

func (a *App) postScreen(ctx context.Context, id int64) {
	for {
		post, err := a.backend.GetPost(ctx, id)
		if err != nil {
			a.notice(err)
			return
		}
		comments, err := a.backend.ListComments(ctx, id)
		if err != nil {
			a.notice(err)
			comments = nil
		}
		threaded := board.Thread(comments)

		like, save := "🤍", "☆"
		if post.IsLiked {
			like = "💗"
		}
		if post.IsSaved {
			save = "⭐"
		}
		fmt.Printf("\n== #%d %s ==\n%s · %s\n\n%s\n\n%s %d   %s   💬 %d\n",
			post.ID, post.Title, post.NickName,
			post.WritingTime.Format("2006-01-02 15:04"),
			post.Content, like, post.LikeCount, save, len(threaded))
		for _, c := range threaded {
			indent := ""
			if c.ParentID != nil {
				indent = "    ↳ "
			}
			fmt.Printf("  %s[%d] %s: %s\n", indent, c.ID, c.NickName, c.Content)
		}

		fmt.Println("l) like  k) bookmark  m) comment  p <id>) reply  e) edit  d) delete  x <id>) del comment  b) back")
		input := a.prompt("post> ")
		cmd, arg := splitCmd(input)
		switch cmd {
		case "l":
			res, err := a.backend.ToggleLike(ctx, id)
			if err != nil {
				a.notice(err)
				continue
			}
			// Mirror the response into the shared store instead of
			// re-fetching the whole board.
			a.store.PatchLikeState(id, res.LikeCount, res.Liked)
		case "k":
			res, err := a.backend.ToggleSave(ctx, id)
			if err != nil {
				a.notice(err)
				continue
			}
			a.store.PatchSaveState(id, res.Saved)
		case "m":
			a.submitComment(ctx, id, nil)
		case "p":
			parentID, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Println("Usage: p <comment id>")
				continue
			}
			a.submitComment(ctx, id, &parentID)
		case "e":
			a.writeScreen(ctx, post)
		case "d":
			if a.prompt("Really delete? (y/n) ") != "y" {
				continue
			}
			if err := a.backend.DeletePost(ctx, id); err != nil {
				a.notice(err)
				continue
			}
			if err := a.store.FetchAll(ctx); err != nil {
				a.notice(err)
			}
			return
		case "x":
			cid, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Println("Usage: x <comment id>")
				continue
			}
			if err := a.backend.DeleteComment(ctx, cid); err != nil {
				a.notice(err)
			}
		case "b", "q":
			return
		default:
			fmt.Println("Unknown command.")
		}
	}
}

func (a *App) submitComment(ctx context.Context, postID int64, parentID *int64) {
	content := a.prompt("comment> ")
	if content == "" {
		return
	}
	_, email, _ := a.identityEmail()
	_, err := a.backend.CreateComment(ctx, api.CreateCommentRequest{
		BoardID:  postID,
		Email:    email,
		Content:  content,
		ParentID: parentID,
	})
	if err != nil {
		a.notice(err)
	}
}

func (a *App) writeScreen(ctx context.Context, editing *models.Post) {
	title := a.prompt("title> ")
	content := a.prompt("content> ")
	categoryIn := a.prompt("category (tip/free/question)> ")
	category := models.Category(categoryIn)
	if title == "" || content == "" || !category.Valid() {
		fmt.Println("Title, content and a valid category are all required.")
		return
	}

	userID, nickName, _ := a.sess.Identity()
	req := api.CreatePostRequest{
		Title:       title,
		Content:     content,
		Category:    category,
		UserID:      userID,
		NickName:    nickName,
		WritingTime: time.Now(),
	}

	var err error
	if editing != nil {
		_, err = a.backend.UpdatePost(ctx, editing.ID, req)
	} else {
		_, err = a.backend.CreatePost(ctx, req)
	}
	if err != nil {
		a.notice(err)
		return
	}
	if err := a.store.FetchAll(ctx); err != nil {
		a.notice(err)
	}
	fmt.Println("Saved.")
}

func (a *App) identityEmail() (string, string, bool) {
	sess := a.sess.Current()
	_, _, ok := a.sess.Identity()
	return sess.UserID, sess.Email, ok
}

func splitCmd(input string) (string, string) {
	parts := strings.SplitN(input, " ", 2)
	cmd := parts[0]
	arg := ""
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

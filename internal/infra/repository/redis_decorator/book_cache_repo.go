package redis_decorator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MateuszRostek/book-store/internal/infra/repository/db"
	"github.com/MateuszRostek/book-store/internal/model"
	"github.com/RoyceAzure/lab/rj_redis/pkg/cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const bookCacheTTL = 10 * time.Minute

/*
redis 只快取書籍詳細資料，購物車與訂單狀態一律直接查db
cache miss 或 redis 異常時直接fallback到db，不影響主流程
*/
type CacheAsideBookRepo struct {
	db.IBookStore
	cache cache.Cache
	group singleflight.Group
}

func NewCacheAsideBookRepo(store db.IBookStore, cache cache.Cache) db.IBookStore {
	return &CacheAsideBookRepo{IBookStore: store, cache: cache}
}

var _ db.IBookStore = (*CacheAsideBookRepo)(nil)

func bookCacheKey(bookID uint) string {
	return fmt.Sprintf("book:%d", bookID)
}

func (r *CacheAsideBookRepo) GetBookByID(ctx context.Context, bookID uint) (*model.Book, error) {
	key := bookCacheKey(bookID)

	raw, err := r.cache.Get(ctx, key)
	if err == nil {
		if s, ok := raw.(string); ok {
			var book model.Book
			if err := json.Unmarshal([]byte(s), &book); err == nil {
				return &book, nil
			}
			log.Warn().Uint("book_id", bookID).Msg("cached book payload invalid, fallback to db")
		}
	}

	// cache miss時用singleflight合併併發查詢，同一本書只打一次db
	v, err, _ := r.group.Do(key, func() (any, error) {
		book, err := r.IBookStore.GetBookByID(ctx, bookID)
		if err != nil {
			return nil, err
		}

		if bs, err := json.Marshal(book); err == nil {
			if err := r.cache.Set(ctx, key, bs, bookCacheTTL); err != nil {
				log.Warn().Err(err).Uint("book_id", bookID).Msg("set book cache failed")
			}
		}
		return book, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Book), nil
}

func (r *CacheAsideBookRepo) UpdateBook(ctx context.Context, book *model.Book) error {
	if err := r.IBookStore.UpdateBook(ctx, book); err != nil {
		return err
	}
	r.invalidate(ctx, book.BookID)
	return nil
}

func (r *CacheAsideBookRepo) DeleteBook(ctx context.Context, bookID uint) error {
	if err := r.IBookStore.DeleteBook(ctx, bookID); err != nil {
		return err
	}
	r.invalidate(ctx, bookID)
	return nil
}

func (r *CacheAsideBookRepo) invalidate(ctx context.Context, bookID uint) {
	if err := r.cache.Delete(ctx, bookCacheKey(bookID)); err != nil {
		log.Warn().Err(err).Uint("book_id", bookID).Msg("delete book cache failed")
	}
}

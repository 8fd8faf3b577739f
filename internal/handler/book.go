package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookstore/internal/service"
	"github.com/snnyvrz/bookstore/internal/validation"
)

type BookHandler struct {
	books service.BookService
}

func NewBookHandler(books service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
		books.POST("", h.CreateBook)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book; the id is assigned by the server
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      BookRequest                true  "Book to create"
// @Success      200      {object}  Book
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}
	if !priceFits(req.Price) {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_DATA",
			"price must have at most 8 integer digits and 2 decimal places",
		)
		return
	}

	created, err := h.books.Create(c.Request.Context(), req.toModel())
	if err != nil {
		writeServiceError(c, err,
			"BOOK_CREATE_FAILED",
			"failed to create book",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(created))
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books
// @Tags         books
// @Produce      json
// @Success      200  {array}   Book
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.books.ListAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	c.JSON(http.StatusOK, toBookListResponse(books))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  Get a single book by its numeric id
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  Book
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return
	}

	book, err := h.books.GetByID(c.Request.Context(), bookID)
	if err != nil {
		writeServiceError(c, err,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(book))
}

// UpdateBook godoc
// @Summary      Replace a book
// @Description  Overwrite title, author, price and published date of a book; omitted fields are cleared
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "Book ID"
// @Param        payload  body      BookRequest                true  "Full book representation"
// @Success      200      {object}  Book
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return
	}

	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}
	if !priceFits(req.Price) {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_DATA",
			"price must have at most 8 integer digits and 2 decimal places",
		)
		return
	}

	updated, err := h.books.Update(c.Request.Context(), bookID, req.toModel())
	if err != nil {
		writeServiceError(c, err,
			"BOOK_UPDATE_FAILED",
			"failed to update book",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(updated))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book by its numeric id
// @Tags         books
// @Produce      json
// @Param        id   path      int     true  "Book ID"
// @Success      200  {string}  string  "Deleted"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return
	}

	if err := h.books.Delete(c.Request.Context(), bookID); err != nil {
		writeServiceError(c, err,
			"BOOK_DELETE_FAILED",
			"failed to delete book",
		)
		return
	}

	c.Status(http.StatusOK)
}

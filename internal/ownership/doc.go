// Package ownership реализует эксклюзивное владение объектами поверх арены.
//
// Арена хранит объекты в таблице слотов. Каждый слот имеет счётчик поколений:
// хэндл запоминает (индекс, поколение), и если слот освобождён или переиспользован,
// обращение через старый хэндл вернёт ErrStaleHandle, а не чужой объект.
//
// Unique — единственный владелец объекта. Владение передаётся через Move,
// после чего исходный хэндл пуст и любое обращение к нему возвращает ErrMovedFrom.
// Копировать Unique по значению нельзя: go vet (copylocks) ловит такие копии.
//
// Vector — упорядоченная последовательность владельцев. Итерация по ней
// только заимствует элементы (Borrowed, Slots) и никогда не создаёт второго владельца.
//
// Ни один тип пакета не безопасен для конкурентного использования.
package ownership

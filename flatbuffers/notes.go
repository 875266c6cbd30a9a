package flatbuffers

// 布局示例
//
// 定义表的结构：
//	table MyTable {
//	 field1: int;    // slot 0 ，vtable 偏移 4
//	 field2: string; // slot 1 ，vtable 偏移 6
//	 field3: int;    // slot 2 ，vtable 偏移 8
//	}
//
// 假设 field1 = 42 ，field2 = "hello" ，field3 等于默认值（被省略）。
// Builder 会把末尾未设置的 slot 裁掉，所以 vtable 只有 2 个字段槽：
//
// 按 field2 、field1 的顺序 Prepend（先写的在高地址）：
//
//	vtable: [0x08 0x00] [0x0C 0x00] [0x04 0x00] [0x08 0x00]
//	         vtable=8B   object=12B  field1@4    field2@8
//
//	object: [soffset] [field1 = 42] [field2 uoffset]
//
// 读取 field3 时，vtable 偏移 8 超出 vtable 长度 8 ，Offset 返回 0 ，GetInt32Slot 返回默认值。
// 这也是 schema 演进的基础：旧 writer 写出的 buffer 不包含新字段，新 reader 读到的就是默认值。

// 字段定位
//
//	root       = GetUOffsetT(buf[0:])                 // 根 table 的位置
//	vtable     = root - GetSOffsetT(buf[root:])        // soffset 是 "要减去的值"
//	vtableSize = GetVOffsetT(buf[vtable:])
//	fieldOff   = GetVOffsetT(buf[vtable+4+2*slot:])    // 仅当 4+2*slot < vtableSize
//	fieldPos   = root + fieldOff                      // fieldOff == 0 表示字段不存在
//
// 字符串 / 向量字段在 fieldPos 处存的是 uoffset ：数据位置 = fieldPos + GetUOffsetT(buf[fieldPos:]) ，
// 数据开头 4 字节是元素个数。table 向量的每个元素同样是 uoffset ，需要再间接一次。

// Q&A 就地修改（mutation）
//
// 已存在的标量字段、struct 字段、标量向量的元素可以就地修改，buffer 长度不变。
// 构建时因等于默认值而被省略的字段在 buffer 里没有存储空间，MutateXxxSlot 返回 false ，
// 之后读到的仍然是默认值。需要修改这类字段时只能重新构建整个 buffer（参见 store 包的 Mutate）。
//
// 字符串、table 向量等引用类型不能就地修改：被引用的对象无法在不重写 buffer 的情况下移动。

// Q&A vtable 去重
//
// EndObject 写 vtable 之前，会从最近写入的 vtable 开始向前比较，内容完全一致（包括 object 大小）
// 就复用已有的 vtable ，只回填 soffset 。去重只影响输出大小，不影响任何字段的读取结果。
// 因为 vtable 里的偏移与对齐有关，逻辑上相同但对齐不同的对象不一定能共享 vtable 。

// Q&A 嵌套 buffer
//
// 一个 [ubyte] 字段可以装下另一个完整的、独立 Finish 过的 buffer 。
// Table.NestedRoot 在这段字节上重新 GetRootAs ，得到的视图与外层 buffer 共享内存。
